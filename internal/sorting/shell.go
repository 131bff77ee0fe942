package sorting

// Shell runs gapped insertion passes with gaps n/2, n/4, ..., 1, swapping an
// element backwards by the gap while it is smaller than its gap-predecessor.
func Shell(nums []int, rec Recorder) {
	n := len(nums)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			for j := i; j >= gap; j -= gap {
				emit(rec, Compare(j-gap, j), nums)
				if nums[j-gap] <= nums[j] {
					break
				}
				nums[j-gap], nums[j] = nums[j], nums[j-gap]
				emit(rec, Swap(j-gap, j), nums)
			}
		}
	}
	emit(rec, Noop(), nums)
}
